// Package output formata as visualizações do CRM para o terminal, em tabela ou JSON.
package output

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format é o formato de saída dos comandos
type Format int

const (
	FormatTable Format = iota
	FormatJSON
)

// Detect escolhe o formato a partir da flag --json e de CRM_OUTPUT
func Detect(jsonFlag bool, env string) Format {
	if jsonFlag || env == "json" {
		return FormatJSON
	}
	return FormatTable
}

// JSON escreve o valor indentado
func JSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("erro ao codificar JSON: %w", err)
	}
	return nil
}

// ErrorResponse é o envelope de erro no modo JSON, no mesmo formato da API
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSONError(w io.Writer, code, msg string) {
	_ = JSON(w, ErrorResponse{Code: code, Message: msg})
}
