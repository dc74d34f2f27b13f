package services

import (
	"context"

	"newsportal/models"
	"newsportal/repositories"
)

type TagService interface {
	List(ctx context.Context) ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.GetAll(ctx)
}
