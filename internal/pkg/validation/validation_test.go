package validation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooquk/sooquk-dashboard/internal/models"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
)

// echoTranslator renders key(args) so assertions can see what was looked up.
type echoTranslator struct{}

func (echoTranslator) T(locale, key string, args ...any) string {
	if len(args) == 0 {
		return locale + ":" + key
	}
	return fmt.Sprintf("%s:%s%v", locale, key, args)
}

func TestStruct_Valid(t *testing.T) {
	v := validation.New()
	assert.NoError(t, validation.Struct(v, models.CityReq{NameEn: "Riyadh", NameAr: "الرياض"}))
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	v := validation.New()
	now := time.Now()

	err := validation.Struct(v, models.CouponReq{
		Code:          "x",
		DiscountType:  "bogus",
		DiscountValue: 10,
		StartsAt:      now,
		ExpiresAt:     now.Add(-time.Hour),
	})

	require.ErrorIs(t, err, apperrors.ErrValidation)
	var fields apperrors.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "validation.min|3", fields["code"])
	assert.Equal(t, "validation.oneof|percentage fixed", fields["discount_type"])
	assert.Equal(t, "validation.gtfield|StartsAt", fields["expires_at"])
	assert.NotContains(t, fields, "discount_value")
}

func TestLocalize(t *testing.T) {
	got := validation.Localize(echoTranslator{}, "ar", apperrors.FieldErrors{
		"name_en":       "validation.required",
		"code":          "validation.min|3",
		"discount_type": "validation.oneof|percentage fixed",
		"expires_at":    "validation.gtfield|StartsAt",
		"weird":         "validation.unique",
		"_":             "validation.invalid",
	})

	assert.Equal(t, "ar:validation.required", got["name_en"])
	assert.Equal(t, "ar:validation.min[3]", got["code"])
	assert.Equal(t, "ar:validation.oneof[percentage, fixed]", got["discount_type"])
	assert.Equal(t, "ar:validation.gtfield[ar:column.starts_at]", got["expires_at"])
	assert.Equal(t, "ar:validation.invalid", got["weird"])
	assert.Equal(t, "ar:validation.invalid", got["_"])
}
