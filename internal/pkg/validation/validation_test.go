package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/globalcargo/cargo-console/internal/core/domain"
)

func TestValidate_CargoWeightMustBePositive(t *testing.T) {
	v := New()
	c := domain.NewCargo()
	c.Description = "Bananas"

	for _, w := range []domain.Decimal{"0", "-3", "abc"} {
		c.Weight = w
		err := v.Validate(c)
		var verr *Error
		if !errors.As(err, &verr) {
			t.Fatalf("weight %q: expected *Error, got %v", w, err)
		}
		if !strings.Contains(verr.Message, "weight") {
			t.Fatalf("weight %q: message should name the field: %q", w, verr.Message)
		}
	}

	c.Weight = "12.5"
	if err := v.Validate(c); err != nil {
		t.Fatalf("valid cargo rejected: %v", err)
	}
}

func TestValidate_MultiWordEnums(t *testing.T) {
	v := New()
	s := domain.NewShip()
	s.Name, s.RegistrationNumber, s.CapacityInTonnes = "Aurora", "R-1", "1200"
	s.Status = domain.ShipStatusUnderMaintenance
	s.Type = domain.ShipTypeFishing
	if err := v.Validate(s); err != nil {
		t.Fatalf("valid ship rejected: %v", err)
	}

	s.Type = "submarine"
	err := v.Validate(s)
	if err == nil || !strings.Contains(err.Error(), "type must be one of") {
		t.Fatalf("expected enum failure, got %v", err)
	}
}

func TestValidate_MessagesUseJSONNames(t *testing.T) {
	err := New().Validate(domain.NewPort())
	if err == nil {
		t.Fatalf("empty port must fail")
	}
	for _, want := range []string{"port name is required", "contact email is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("message %q missing %q", err.Error(), want)
		}
	}
}
