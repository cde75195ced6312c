package services_test

import (
	"testing"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validDonationInput() services.DonationInput {
	return services.DonationInput{
		DonorName: strPtr("Ravi"),
		Email:     strPtr("ravi@example.com"),
		Amount:    floatPtr(500),
	}
}

func TestDonationService_CreateDonation(t *testing.T) {
	repo := new(MockDonationRepository)
	events := new(MockPublisher)
	service := services.NewDonationService(repo, events, "")

	repo.On("Create", mock.MatchedBy(func(d *models.Donation) bool {
		return d.PaymentStatus == models.PaymentPending && d.Currency == "INR" && d.UserID != nil && *d.UserID == "u-1"
	})).Return(nil).Once()
	events.On("Publish", services.EventDonationCreated, mock.Anything).Return(nil).Once()

	d, err := service.CreateDonation(validDonationInput(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 500.0, d.Amount)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestDonationService_CreateDonation_Rejections(t *testing.T) {
	repo := new(MockDonationRepository)
	service := services.NewDonationService(repo, nil, "INR")

	for _, amount := range []float64{0, -10} {
		in := validDonationInput()
		in.Amount = floatPtr(amount)
		_, err := service.CreateDonation(in, "")
		require.Error(t, err)
		assert.True(t, services.IsValidation(err))
		assert.Equal(t, "Donation amount must be greater than 0", err.Error())
	}

	in := validDonationInput()
	in.Email = nil
	_, err := service.CreateDonation(in, "")
	assert.True(t, services.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDonationService_GetDonation_Ownership(t *testing.T) {
	repo := new(MockDonationRepository)
	service := services.NewDonationService(repo, nil, "INR")

	owner := "u-1"
	d := &models.Donation{ID: "d-1", UserID: &owner}
	repo.On("GetByID", "d-1").Return(d, nil)

	got, err := service.GetDonation("d-1", "u-1", false)
	require.NoError(t, err)
	assert.Equal(t, "d-1", got.ID)

	_, err = service.GetDonation("d-1", "u-2", false)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = service.GetDonation("d-1", "u-2", true)
	assert.NoError(t, err)

	repo.On("GetByID", "anon").Return(&models.Donation{ID: "anon"}, nil)
	_, err = service.GetDonation("anon", "u-1", false)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestDonationService_UpdatePaymentStatus(t *testing.T) {
	repo := new(MockDonationRepository)
	events := new(MockPublisher)
	service := services.NewDonationService(repo, events, "INR")

	_, err := service.UpdatePaymentStatus("d-1", models.PaymentStatus("refunded"), "")
	assert.True(t, services.IsValidation(err))

	d := &models.Donation{ID: "d-1", PaymentStatus: models.PaymentPending}
	repo.On("GetByID", "d-1").Return(d, nil)
	repo.On("Update", d).Return(nil)
	events.On("Publish", services.EventDonationPaymentUpdated, mock.Anything).Return(nil).Once()

	got, err := service.UpdatePaymentStatus("d-1", models.PaymentSuccess, " pay_1 ")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSuccess, got.PaymentStatus)
	assert.Equal(t, "pay_1", got.PaymentID)

	// Same status again publishes nothing and keeps the payment id
	_, err = service.UpdatePaymentStatus("d-1", models.PaymentSuccess, "")
	require.NoError(t, err)
	assert.Equal(t, "pay_1", d.PaymentID)
	events.AssertExpectations(t)
}
