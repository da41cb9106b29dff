// Package mappers 提供数据库行与领域模型之间的转换工具。
package mappers

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// TextPtr 将 pgtype.Text 转换为 *string，NULL 映射为 nil。
func TextPtr(value pgtype.Text) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

// Int4Ptr 将 pgtype.Int4 转换为 *int32，NULL 映射为 nil。
func Int4Ptr(value pgtype.Int4) *int32 {
	if !value.Valid {
		return nil
	}
	return &value.Int32
}
