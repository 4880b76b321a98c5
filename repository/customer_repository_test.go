package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sales-manager-app/sales-manager-api/models"
)

func TestCustomerRepositoryGetByEmail_ActiveOnly(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCustomerRepository(db)

	customer := &models.Customer{
		ID:     uuid.NewString(),
		Name:   "Ana",
		Email:  "ana@example.com",
		Phone:  "11999990000",
		Active: true,
	}
	require.NoError(t, repo.Add(customer))

	found, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, found.ID)

	// After a soft delete the email no longer resolves
	require.NoError(t, repo.Delete(customer))
	_, err = repo.GetByEmail("ana@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	// But the row is still addressable by id
	byID, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byID.ID)
	assert.False(t, byID.Active)
}

func TestCustomerRepositoryGetByID_LoadsOrders(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCustomerRepository(db)

	customer := seedCustomer(t, db)
	seedOrder(t, db, customer.ID, time.Now())
	seedOrder(t, db, customer.ID, time.Now().Add(time.Minute))

	loaded, err := repo.GetByID(customer.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Orders, 2)
}

func TestStoreGetAll_FiltersInactive(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewCustomerRepository(db)

	active := seedCustomer(t, db)
	inactive := seedCustomer(t, db)
	require.NoError(t, repo.Delete(inactive))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, active.ID, all[0].ID)
}
