package storing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var storingTestStores = domain.Registry{
	"LIN": {Code: "LIN", Name: "Linnaeusstraat", City: "Amsterdam", SQM: 65, Opened: "2021-03"},
	"JPH": {Code: "JPH", Name: "Jan Pieter Heijestraat", City: "Amsterdam", SQM: 55, Opened: "2021-09"},
	"OOH": {Code: "OOH", Name: "Overhead (All Stores)", City: "Amsterdam", SQM: 0, Opened: "2021-01"},
}

func TestListStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	investments := mocks.NewMockInvestmentRepository(ctrl)
	service := NewService(storingTestStores, investments)

	investments.EXPECT().List().Return([]domain.InvestmentEntry{
		{StoreCode: "LIN", Total: 185000},
	}, nil)

	infos, err := service.ListStores()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	// sorted by code, overhead excluded
	assert.Equal(t, "JPH", infos[0].Code)
	assert.Nil(t, infos[0].Investment)

	assert.Equal(t, "LIN", infos[1].Code)
	require.NotNil(t, infos[1].Investment)
	assert.Equal(t, 185000.0, infos[1].Investment.Total)
}

func TestUpsertInvestment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	investments := mocks.NewMockInvestmentRepository(ctrl)
	service := NewService(storingTestStores, investments)

	investments.EXPECT().Upsert(gomock.Any()).Return(nil)

	entry, err := service.UpsertInvestment("LIN", &domain.InvestmentEntry{
		BuildoutCost:   90000,
		EquipmentCost:  45000,
		FurnitureCost:  20000,
		WorkingCapital: 30000,
	})
	require.NoError(t, err)

	assert.Equal(t, "LIN", entry.StoreCode)
	assert.Equal(t, "2021-03", entry.Opened)
	assert.Equal(t, 185000.0, entry.Total)
}

func TestUpsertInvestment_UnknownStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(storingTestStores, mocks.NewMockInvestmentRepository(ctrl))

	_, err := service.UpsertInvestment("XXX", &domain.InvestmentEntry{BuildoutCost: 1000})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStore)
}

func TestUpsertInvestment_OverheadRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(storingTestStores, mocks.NewMockInvestmentRepository(ctrl))

	_, err := service.UpsertInvestment("OOH", &domain.InvestmentEntry{BuildoutCost: 1000})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverheadStore)
}

func TestUpsertInvestment_NegativeAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(storingTestStores, mocks.NewMockInvestmentRepository(ctrl))

	_, err := service.UpsertInvestment("LIN", &domain.InvestmentEntry{BuildoutCost: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAmounts)
}
