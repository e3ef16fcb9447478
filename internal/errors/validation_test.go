package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildWithoutErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Aisha", vb)
	errors.ValidateRange("level", 3, 1, 10, vb)

	s.False(vb.HasErrors())
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuildCollectsFields() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "   ", vb)
	errors.ValidateRange("level", 11, 1, 10, vb)
	errors.ValidateEnum("slot", "helmet", []string{"weapon", "armor", "accessory"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "level: must be between 1 and 10")
	s.Contains(err.Error(), "name: is required")
	s.Contains(err.Error(), "slot: must be one of: weapon, armor, accessory")

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Len(fields, 3)
}

func (s *ValidationTestSuite) TestMinLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMinLength("question", " ab ", 3, vb)
	s.Error(vb.Build())
}
