package model

// TranslationBatch is the per-request view of a translate call:
// the ordered input texts and whether the caller sent a single string.
type TranslationBatch struct {
	Texts  []string
	Source string
	Target string
	Scalar bool
}
