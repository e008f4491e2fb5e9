package getarg

// Parse builds a fresh Args from an argument vector such as os.Args. The
// first element is the program name and is skipped unless
// WithProgramName(false) is given.
//
// Tokens that do not start with '-' are ignored. "--X" is treated as "-X",
// and "-noX" is recorded as the negation of "-X". Only the first '=' splits
// name from value. Parse never fails: odd tokens are filed under whatever
// name they produce.
func Parse(args []string, opts ...ParseOpt) *Args {
	cfg := newParseCfg(opts)
	log := cfg.logger

	tokens := args
	if cfg.programName && len(tokens) > 0 {
		tokens = tokens[1:]
	}
	log.Debug("Argument parser started.", "tokens", len(tokens))

	parsed := newArgs()
	parsed.raw = append([]string(nil), tokens...)

	for _, token := range tokens {
		o, ok := newOccurrence(token)
		if !ok {
			log.Debug("Skipping non-flag token.", "token", token)
			continue
		}
		if !o.Negated && o.Name == negationPrefix {
			log.Debug("Bare negation prefix filed as a literal flag.", "token", token)
		}
		parsed.record(o)
	}

	log.Debug("Argument parser finished.",
		"flags", len(parsed.order),
		"positive", len(parsed.positive),
		"negated", len(parsed.negated))
	return parsed
}
