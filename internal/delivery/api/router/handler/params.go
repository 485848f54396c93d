package handler

import (
	"strconv"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttributeValueRequest is one (attribute, value) pair of a variant.
type AttributeValueRequest struct {
	AttributeID int64  `json:"attribute_id" validate:"required,gt=0"`
	Value       string `json:"value" validate:"required,max=255"`
}

func toAttributeInputs(reqs []AttributeValueRequest) []usecase.AttributeInput {
	inputs := make([]usecase.AttributeInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, usecase.AttributeInput{AttributeID: req.AttributeID, Value: req.Value})
	}

	return inputs
}

// pathID reads a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid %s", name)
	}

	return id, nil
}
