package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sweetdelights/bakery/pkg/validate"
)

type productInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Email    string  `json:"email" validate:"nullable,email"`
	Status   string  `json:"status" validate:"nullable,in=pending,completed,cancelled"`
	Quantity int     `json:"quantity" validate:"nullable,integer,gte=1,lte=3"`
}

func TestStruct_Valid(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Chocolate Cake",
		Price:    500,
		Category: "cakes",
		Email:    "a@b.co",
		Status:   "pending",
		Quantity: 2,
	})
	assert.Empty(t, errs)
}

func TestStruct_RequiredMissing(t *testing.T) {
	errs := validate.Struct(productInput{Price: 10, Category: "cakes"})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs["name"], "required")
}

func TestStruct_GtRejectsZeroPrice(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Bun", Category: "breads"})
	assert.Contains(t, errs, "price")
}

func TestStruct_NullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Bun", Price: 1, Category: "breads"})
	assert.Empty(t, errs)
}

func TestStruct_EmailFormat(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Bun", Price: 1, Category: "breads", Email: "nope"})
	assert.Contains(t, errs["email"], "valid email")
}

func TestStruct_InListKeepsMultiValueParam(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Bun", Price: 1, Category: "breads", Status: "completed"})
	assert.Empty(t, errs)

	errs = validate.Struct(productInput{Name: "Bun", Price: 1, Category: "breads", Status: "shipped"})
	assert.Contains(t, errs, "status")
}

func TestStruct_QuantityRange(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Bun", Price: 1, Category: "breads", Quantity: 4})
	assert.Contains(t, errs, "quantity")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", validate.Summary(nil))
	assert.Equal(t, "x", validate.Summary(map[string]string{"a": "x"}))
}
