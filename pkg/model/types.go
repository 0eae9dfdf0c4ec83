package model

import internalfields "github.com/mirsardor-ktng/documint/internal/fields"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalfields.FieldKind

const (
	KindIndependent  = internalfields.KindIndependent
	KindAmountBase   = internalfields.KindAmountBase
	KindAmountWords  = internalfields.KindAmountWords
	KindNameGenitive = internalfields.KindNameGenitive
)

type Field = internalfields.Field
type FormModel = internalfields.FormModel
