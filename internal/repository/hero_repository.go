package repository

import (
	"context"
	"sync"

	"github.com/iliyamo/school-admin/internal/model"
)

// HeroRepo holds the single landing-page banner.
type HeroRepo struct {
	mu   sync.RWMutex
	hero model.HeroConfig
}

func NewHeroRepo(seed model.HeroConfig) *HeroRepo { return &HeroRepo{hero: seed} }

func (r *HeroRepo) Get(ctx context.Context) (model.HeroConfig, error) {
	if err := ctx.Err(); err != nil {
		return model.HeroConfig{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hero, nil
}

// Put replaces the whole banner.
func (r *HeroRepo) Put(ctx context.Context, h model.HeroConfig) (model.HeroConfig, error) {
	if err := ctx.Err(); err != nil {
		return model.HeroConfig{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hero = h
	return r.hero, nil
}

// Patch merges the supplied fields into the banner.
func (r *HeroRepo) Patch(ctx context.Context, p model.HeroPatch) (model.HeroConfig, error) {
	if err := ctx.Err(); err != nil {
		return model.HeroConfig{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hero = p.Apply(r.hero)
	return r.hero, nil
}
