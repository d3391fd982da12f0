package services

import (
	"esantiye/database"
	"esantiye/models"
)

// StatsService computes row counts on demand
type StatsService struct {
	repo ResourceRepository
}

func NewStatsService(repo ResourceRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Compute runs four independent counts. A write landing between them may be
// reflected in one count and not another.
func (s *StatsService) Compute() (*models.Stats, error) {
	var stats models.Stats

	targets := []struct {
		table string
		dst   *models.Count
	}{
		{database.TableProjects, &stats.Projects},
		{database.TableMaterials, &stats.Materials},
		{database.TablePersonnel, &stats.Personnel},
		{database.TableTasks, &stats.Tasks},
	}

	for _, t := range targets {
		n, err := s.repo.Count(t.table)
		if err != nil {
			return nil, err
		}
		t.dst.Total = n
	}

	return &stats, nil
}
