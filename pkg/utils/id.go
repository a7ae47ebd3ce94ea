package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a record id of the form ID<unix-ms><suffix>. The time
// prefix keeps ids sortable by creation; the nanoid suffix disambiguates ids
// minted within the same millisecond.
func GenerateID() (string, error) {
	suffix, err := gonanoid.Generate(idAlphabet, 4)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("ID%d%s", time.Now().UnixMilli(), suffix), nil
}
