package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductTotalPrice(t *testing.T) {
	product := Product{Name: "Widget", Price: 100.00, Tax: 10.00}
	assert.InDelta(t, 110.00, product.TotalPrice(), 0.001)

	free := Product{Name: "Sample", Price: 0, Tax: 19.0}
	assert.Zero(t, free.TotalPrice())

	untaxed := Product{Name: "Raw", Price: 42.50, Tax: 0}
	assert.InDelta(t, 42.50, untaxed.TotalPrice(), 0.001)
}

func TestParseComplaintStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Closed", "Not Closed"} {
		status, ok := ParseComplaintStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, ComplaintStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "Resolved", "CLOSED"} {
		_, ok := ParseComplaintStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestParseComplaintLevel(t *testing.T) {
	for _, valid := range []string{"Level 1", "Level 2", "Level 3"} {
		level, ok := ParseComplaintLevel(valid)
		assert.True(t, ok)
		assert.Equal(t, ComplaintLevel(valid), level)
	}

	_, ok := ParseComplaintLevel("Level 4")
	assert.False(t, ok)
}

func TestUserRoleHelpers(t *testing.T) {
	admin := User{Username: "root", Role: RoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsEmployee())
	assert.True(t, admin.IsValidRole())

	employee := User{Username: "jdoe", FirstName: "Jordan", LastName: "Doe", Role: RoleEmployee}
	assert.True(t, employee.IsEmployee())
	assert.Equal(t, "Jordan Doe", employee.FullName())

	nameless := User{Username: "ghost", Role: UserRole("superuser")}
	assert.False(t, nameless.IsValidRole())
	assert.Equal(t, "ghost", nameless.FullName())
}
