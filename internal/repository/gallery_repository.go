package repository

import (
	"context"

	"github.com/iliyamo/school-admin/internal/model"
)

// GalleryRepo stores gallery images, newest first.
type GalleryRepo struct {
	c *Collection[model.GalleryImage]
}

func NewGalleryRepo(seed []model.GalleryImage) *GalleryRepo {
	return &GalleryRepo{
		c: NewCollection("image", Prepend, func(g *model.GalleryImage) *string { return &g.ID }, seed),
	}
}

// List returns the images in category; "All" or "" returns every image.
func (r *GalleryRepo) List(ctx context.Context, category string) ([]model.GalleryImage, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.FilterGallery(all, category), nil
}

func (r *GalleryRepo) Get(ctx context.Context, id string) (model.GalleryImage, error) {
	return r.c.Get(ctx, id)
}

func (r *GalleryRepo) Create(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	return r.c.Insert(ctx, g)
}

func (r *GalleryRepo) Save(ctx context.Context, id string, g model.GalleryImage) (model.GalleryImage, error) {
	return r.c.Replace(ctx, id, g)
}

func (r *GalleryRepo) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

func (r *GalleryRepo) Count() int { return r.c.Len() }
