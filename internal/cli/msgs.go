package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Detect multi-pack product titles"
	MsgClassifyShort = "Classify product titles as multi-pack or single item"
	MsgExplainShort  = "Show which rule and pattern decided each title"
	MsgEvalShort     = "Evaluate the classifier against a labeled corpus"
	MsgVersionShort  = "Print version information"

	// Flags
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagVocabulary = "YAML file with extra vocabulary terms"
	MsgFlagBoolOnly   = "Print only true or false for each title"
	MsgFlagCorpusFile = "Labeled corpus YAML (defaults to the built-in corpus)"

	// Output formats
	MsgClassifyLine    = "%t\t%s\n"
	MsgBoolLine        = "%t\n"
	MsgExplainTitle    = "Title:     %s\n"
	MsgExplainResult   = "Multipack: %t\n"
	MsgExplainRule     = "Rule:      %s\n"
	MsgExplainFragment = "Fragment:  %s\n"
	MsgEvalPass        = "✓ %-35s → %-5t (expected %t)\n"
	MsgEvalFail        = "✗ %-35s → %-5t (expected %t) [%s]\n"
	MsgEvalSeparator   = "------------------------------------------------------------\n"
	MsgEvalAccuracy    = "Accuracy: %d/%d (%.1f%%)\n"
	MsgVersionFormat   = "packlens %s\n"

	// Errors
	MsgErrNoTitles      = "no titles given"
	MsgErrLoadVocab     = "failed to load vocabulary: %w"
	MsgErrBuildClass    = "failed to build classifier: %w"
	MsgErrReadInput     = "failed to read titles: %w"
	MsgErrOpenCorpus    = "failed to open corpus: %w"
	MsgErrBelowAccuracy = "%d of %d cases misclassified"
)

// MsgRootLong is the root command's long description
const MsgRootLong = `packlens decides whether a product title describes a multi-pack
(several discrete units sold as one item, such as "Granola Bars 12 Pack")
or a single item, using a compiled pattern library and a short chain of
fallback rules.`
