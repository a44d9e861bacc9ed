package product

import "log"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Archive(id string) error {
	return s.repo.Archive(id)
}

// Seed inserts the given products, skipping individual failures so a re-run
// does not abort on rows that already exist.
func (s *Service) Seed(products []Product) []Product {
	created := make([]Product, 0, len(products))
	for _, p := range products {
		saved, err := s.repo.Create(p)
		if err != nil {
			log.Printf("seed: skipping %q: %v", p.Name, err)
			continue
		}
		created = append(created, saved)
	}
	return created
}
