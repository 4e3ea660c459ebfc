package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// RowIDLength cabe nas colunas VARCHAR(32) das tabelas
	RowIDLength = 12
)

// GenerateID gera o id das linhas criadas no backend de tabelas
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, RowIDLength)
}
