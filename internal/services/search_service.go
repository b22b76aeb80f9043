package services

import (
	"sort"
	"strings"

	"dejavu_backend/internal/models"
	"dejavu_backend/internal/repositories"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SearchService interface {
	// SearchPhotographers фильтрует витрину. Фильтры комбинируются
	// через AND; отсутствующий фильтр ничего не ограничивает.
	SearchPhotographers(db *gorm.DB, criteria models.SearchPhotographersCriteria) ([]*dto.PhotographerResponse, error)

	// ListPhotographers возвращает витрину в заданном порядке.
	// Неизвестный ключ сортировки молча дает порядок вставки.
	ListPhotographers(db *gorm.DB, sorting string) ([]*dto.PhotographerResponse, error)
}

type searchService struct {
	photographerRepo repositories.PhotographerRepository
}

func NewSearchService(photographerRepo repositories.PhotographerRepository) SearchService {
	return &searchService{photographerRepo: photographerRepo}
}

func (s *searchService) SearchPhotographers(db *gorm.DB, criteria models.SearchPhotographersCriteria) ([]*dto.PhotographerResponse, error) {
	phs, err := s.photographerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Полный проход по витрине: при ожидаемых объемах это дешевле,
	// чем городить динамический SQL, и сортировка остается стабильной.
	filtered := make([]models.Photographer, 0, len(phs))
	for _, ph := range phs {
		if matchesCriteria(&ph, criteria) {
			filtered = append(filtered, ph)
		}
	}

	responses := make([]*dto.PhotographerResponse, 0, len(filtered))
	for i := range filtered {
		responses = append(responses, buildPhotographerResponse(&filtered[i]))
	}
	return responses, nil
}

func (s *searchService) ListPhotographers(db *gorm.DB, sorting string) ([]*dto.PhotographerResponse, error) {
	phs, err := s.photographerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	sortPhotographers(phs, sorting)

	responses := make([]*dto.PhotographerResponse, 0, len(phs))
	for i := range phs {
		responses = append(responses, buildPhotographerResponse(&phs[i]))
	}
	return responses, nil
}

func matchesCriteria(ph *models.Photographer, criteria models.SearchPhotographersCriteria) bool {
	if criteria.Niche != "" {
		if ph.Niche == nil || !containsFold(ph.Niche.Name, criteria.Niche) {
			return false
		}
	}

	if criteria.MaxPrice != nil && ph.PricePerHour > *criteria.MaxPrice {
		return false
	}

	if criteria.Languages != "" {
		found := false
		for _, lang := range ph.Languages {
			if containsFold(lang.Name, criteria.Languages) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// sortPhotographers сортирует на месте. Стабильная сортировка сохраняет
// порядок вставки для равных ключей; неизвестный ключ ничего не меняет.
func sortPhotographers(phs []models.Photographer, sorting string) {
	switch sorting {
	case models.SortPriceAsc:
		sort.SliceStable(phs, func(i, j int) bool {
			return phs[i].PricePerHour < phs[j].PricePerHour
		})
	case models.SortPriceDesc:
		sort.SliceStable(phs, func(i, j int) bool {
			return phs[i].PricePerHour > phs[j].PricePerHour
		})
	case models.SortNameAsc:
		sort.SliceStable(phs, func(i, j int) bool {
			return phs[i].Name < phs[j].Name
		})
	case models.SortNameDesc:
		sort.SliceStable(phs, func(i, j int) bool {
			return phs[i].Name > phs[j].Name
		})
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
