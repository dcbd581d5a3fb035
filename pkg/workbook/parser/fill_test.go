package parser

import (
	"reflect"
	"testing"

	"github.com/Open-ISP/isp-workbook-parser/pkg/workbook/models"
)

func TestForwardFill(t *testing.T) {
	values := []models.Value{
		models.IntValue(10),
		models.EmptyValue(),
		models.EmptyValue(),
		models.IntValue(20),
		models.EmptyValue(),
	}
	forwardFill(values)

	expected := []models.Value{
		models.IntValue(10),
		models.IntValue(10),
		models.IntValue(10),
		models.IntValue(20),
		models.IntValue(20),
	}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("forwardFill = %v, expected %v", values, expected)
	}
}

func TestForwardFillLeavesLeadingRunEmpty(t *testing.T) {
	values := []models.Value{
		models.EmptyValue(),
		models.EmptyValue(),
		models.TextValue("NSW"),
		models.EmptyValue(),
	}
	forwardFill(values)

	expected := []models.Value{
		models.EmptyValue(),
		models.EmptyValue(),
		models.TextValue("NSW"),
		models.TextValue("NSW"),
	}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("forwardFill = %v, expected %v", values, expected)
	}
}
