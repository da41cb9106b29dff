// Package conf 定义服务的配置结构，由 kratos config 从文件与环境变量装载。
package conf

// Config 是进程级配置根节点。
type Config struct {
	Server Server `json:"server"`
	Data   Data   `json:"data"`
}

// Server 汇总对外监听配置。
type Server struct {
	HTTP HTTP `json:"http"`
}

// HTTP 描述 HTTP 监听地址与请求超时。
type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// Data 汇总数据侧配置。
type Data struct {
	Database Database `json:"database"`
}

// Database 描述 Postgres 连接参数。
type Database struct {
	DSN      string `json:"dsn"`
	MaxConns int32  `json:"max_conns"`
}
