package vo

import "github.com/google/uuid"

// 亲密度累加权重：点赞是高频弱信号，关注是持久意图，打赏按金额体现付费意图。
const (
	AffinityLikeWeight   = 1.0
	AffinityFollowWeight = 5.0
	AffinityTipFactor    = 2.0
)

// UserContext 汇总观看者的历史互动，供打分阶段消费。
// CreatorAffinities 为原始累加值，不做归一化。
type UserContext struct {
	LikedItemIDs       map[uuid.UUID]struct{}
	FollowedCreatorIDs map[uuid.UUID]struct{}
	CreatorAffinities  map[uuid.UUID]float64
}

// NewUserContext 构造空上下文。新账号没有任何互动时所有集合保持为空而非 nil。
func NewUserContext() *UserContext {
	return &UserContext{
		LikedItemIDs:       make(map[uuid.UUID]struct{}),
		FollowedCreatorIDs: make(map[uuid.UUID]struct{}),
		CreatorAffinities:  make(map[uuid.UUID]float64),
	}
}

// AddLike 记录一次点赞并累加对作者的亲密度。
func (c *UserContext) AddLike(contentID, authorID uuid.UUID) {
	c.LikedItemIDs[contentID] = struct{}{}
	c.CreatorAffinities[authorID] += AffinityLikeWeight
}

// AddFollow 记录一次关注并累加亲密度。
func (c *UserContext) AddFollow(creatorID uuid.UUID) {
	c.FollowedCreatorIDs[creatorID] = struct{}{}
	c.CreatorAffinities[creatorID] += AffinityFollowWeight
}

// AddTip 记录一次打赏，金额按系数放大后计入亲密度。
func (c *UserContext) AddTip(authorID uuid.UUID, amount float64) {
	c.CreatorAffinities[authorID] += amount * AffinityTipFactor
}

// HasLiked 判断观看者是否点赞过指定内容。
func (c *UserContext) HasLiked(contentID uuid.UUID) bool {
	_, ok := c.LikedItemIDs[contentID]
	return ok
}

// IsFollowing 判断观看者是否关注指定创作者。
func (c *UserContext) IsFollowing(creatorID uuid.UUID) bool {
	_, ok := c.FollowedCreatorIDs[creatorID]
	return ok
}

// Affinity 返回对指定创作者的原始亲密度，无记录时为 0。
func (c *UserContext) Affinity(creatorID uuid.UUID) float64 {
	return c.CreatorAffinities[creatorID]
}
