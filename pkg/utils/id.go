package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ShortID gera um identificador curto para correlacionar operações em lote
// nos logs (ex.: importação de CSV)
func ShortID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
