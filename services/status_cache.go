package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatusCache เก็บสถานะ ride ล่าสุดของ rider ไว้ใน Redis ให้ endpoint polling
// อ่านถูกๆ ทุก method ปลอดภัยกับ receiver หรือ client ที่เป็น nil (= cache off)
type StatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatusCache(client *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{client: client, ttl: ttl}
}

func statusKey(riderID uint) string {
	return fmt.Sprintf("ride-status:%d", riderID)
}

func (c *StatusCache) Get(ctx context.Context, riderID uint) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	status, err := c.client.Get(ctx, statusKey(riderID)).Result()
	if err != nil {
		return "", false
	}
	return status, true
}

// Set เขียนลง cache; เขียนพลาดถือว่าไม่เป็นไร ครั้งหน้าอ่านจาก DB เอา
func (c *StatusCache) Set(ctx context.Context, riderID uint, status string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, statusKey(riderID), status, c.ttl)
}

// Invalidate ต้องถูกเรียกทุกครั้งที่สถานะ ride ของ rider เปลี่ยน
func (c *StatusCache) Invalidate(ctx context.Context, riderID uint) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, statusKey(riderID))
}
