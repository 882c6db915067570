package xstrconv

import (
	"strconv"
	"strings"
)

// ParseBool is strconv.ParseBool extended with the on/off pair that HTML
// checkboxes submit.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(s)
}
