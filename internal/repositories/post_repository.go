// internal/repositories/post_repo.go
package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "github.com/Aryan1591/TravelBuddy-Notification-Service/internal/models/db_models"
)

type PostRepository interface {
	GetAllPosts(ctx context.Context) ([]dbm.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// GetAllPosts returns the full current snapshot of travel posts.
// The notification pass re-scans everything on every run, so there is
// no filtering here; the lifecycle rules decide what each record needs.
func (r *postRepository) GetAllPosts(ctx context.Context) ([]dbm.Post, error) {
	var posts []dbm.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
