package storing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wakuli/retail-analytics-api/infrastructure/repository"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

var (
	ErrUnknownStore   = errors.New("unknown store code")
	ErrOverheadStore  = errors.New("the overhead pseudo-store cannot carry an investment")
	ErrInvalidAmounts = errors.New("investment amounts must not be negative")
)

// StoreInfo is a registry entry plus its recorded buildout investment, when
// one exists.
type StoreInfo struct {
	domain.Store
	Investment *domain.InvestmentEntry `json:"investment,omitempty"`
}

type StoreService interface {
	ListStores() ([]StoreInfo, error)
	GetStore(storeCode string) (*StoreInfo, error)
	UpsertInvestment(storeCode string, entry *domain.InvestmentEntry) (*domain.InvestmentEntry, error)
}

type Service struct {
	stores      domain.Registry
	investments repository.InvestmentRepository
}

func NewService(stores domain.Registry, investments repository.InvestmentRepository) StoreService {
	return &Service{
		stores:      stores,
		investments: investments,
	}
}

func (s *Service) ListStores() ([]StoreInfo, error) {
	recorded, err := s.investments.List()
	if err != nil {
		return nil, err
	}

	byStore := make(map[string]domain.InvestmentEntry, len(recorded))
	for _, entry := range recorded {
		byStore[entry.StoreCode] = entry
	}

	codes := s.stores.Codes()
	sort.Strings(codes)

	infos := make([]StoreInfo, 0, len(codes))
	for _, code := range codes {
		info := StoreInfo{Store: s.stores[code]}
		if entry, ok := byStore[code]; ok {
			investment := entry
			info.Investment = &investment
		}
		infos = append(infos, info)
	}

	return infos, nil
}

func (s *Service) GetStore(storeCode string) (*StoreInfo, error) {
	store, ok := s.stores[storeCode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStore, storeCode)
	}

	info := &StoreInfo{Store: store}

	entry, err := s.investments.GetByStoreCode(storeCode)
	if err != nil {
		return nil, err
	}
	info.Investment = entry

	return info, nil
}

// UpsertInvestment records the buildout investment for a store. The total is
// derived from the component amounts when not given explicitly, and the
// opening month defaults to the registry's.
func (s *Service) UpsertInvestment(storeCode string, entry *domain.InvestmentEntry) (*domain.InvestmentEntry, error) {
	store, ok := s.stores[storeCode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStore, storeCode)
	}
	if storeCode == domain.OverheadCode {
		return nil, ErrOverheadStore
	}

	if entry.BuildoutCost < 0 || entry.EquipmentCost < 0 || entry.FurnitureCost < 0 || entry.WorkingCapital < 0 || entry.Total < 0 {
		return nil, ErrInvalidAmounts
	}

	entry.StoreCode = storeCode

	if entry.Opened == "" {
		entry.Opened = store.Opened
	}

	if entry.Total == 0 {
		entry.Total = utils.RoundWithTwoDecimalPlace(
			entry.BuildoutCost + entry.EquipmentCost + entry.FurnitureCost + entry.WorkingCapital,
		)
	}

	if err := s.investments.Upsert(entry); err != nil {
		return nil, err
	}

	return entry, nil
}
