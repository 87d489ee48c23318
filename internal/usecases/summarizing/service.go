package summarizing

import (
	"github.com/smartmart/smartmart-api/infrastructure/repository"
	"github.com/smartmart/smartmart-api/internal/domain"
)

// SummaryService expõe os agregados mensais materializados pelo agendador
type SummaryService interface {
	GetMonthlySummaries() (*domain.MonthlySummariesResponse, error)
}

type Service struct {
	monthlySummaryRepository repository.MonthlySummaryRepository
}

func NewService(monthlySummaryRepo repository.MonthlySummaryRepository) SummaryService {
	return &Service{monthlySummaryRepository: monthlySummaryRepo}
}

func (s *Service) GetMonthlySummaries() (*domain.MonthlySummariesResponse, error) {
	summaries, err := s.monthlySummaryRepository.List()
	if err != nil {
		return nil, err
	}

	response := &domain.MonthlySummariesResponse{
		Summaries: summaries,
	}

	for _, summary := range summaries {
		if summary.UpdatedAt.After(response.LastUpdate) {
			response.LastUpdate = summary.UpdatedAt
		}
	}

	return response, nil
}
