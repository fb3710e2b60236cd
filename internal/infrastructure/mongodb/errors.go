package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/bodega-sync-api/internal/domain"
)

// Códigos del servidor con los que rechaza el contenido del documento.
const (
	codeBadValue                  = 2
	codeFailedToParse             = 9
	codeTypeMismatch              = 14
	codePathNotViable             = 28
	codeDollarPrefixedFieldName   = 52
	codeDocumentValidationFailure = 121
	codeBSONObjectTooLarge        = 10334
	codeUpdatedDocumentTooLarge   = 17419
)

var documentRejectionCodes = []int{
	codeBadValue,
	codeFailedToParse,
	codeTypeMismatch,
	codePathNotViable,
	codeDollarPrefixedFieldName,
	codeDocumentValidationFailure,
	codeBSONObjectTooLarge,
	codeUpdatedDocumentTooLarge,
}

// writeError traduce un error de escritura del driver a los sentinelas de dominio:
// clave duplicada -> ErrConflict, rechazo del documento -> ErrInvalidData.
// El resto (red, contexto, autorización, operación interrumpida) se devuelve envuelto tal cual.
func writeError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrConflict, err)
	}
	if isDocumentRejection(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidData, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isDocumentRejection(err error) bool {
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	for _, code := range documentRejectionCodes {
		if se.HasErrorCode(code) {
			return true
		}
	}
	return false
}
