package main

import (
	l10n "github.com/freecad/homepage-l10n"
)

// archiveSource holds the one input selected on the command line.
type archiveSource struct {
	dir string
	zip string
}

func (s archiveSource) apply(cfg *l10n.Config) {
	switch {
	case s.dir != "":
		cfg.Directory, cfg.Zipfile = s.dir, ""
	case s.zip != "":
		cfg.Directory, cfg.Zipfile = "", s.zip
	}
}

// sourceFlag is a pflag.Value writing into a shared archiveSource: -d and -z exclude each
// other and the last one given wins.
type sourceFlag struct {
	src *archiveSource
	zip bool
}

func (f sourceFlag) String() string {
	if f.src == nil {
		return ""
	}
	if f.zip {
		return f.src.zip
	}
	return f.src.dir
}

func (f sourceFlag) Set(v string) error {
	if f.zip {
		f.src.dir, f.src.zip = "", v
		return nil
	}
	f.src.dir, f.src.zip = v, ""
	return nil
}

func (f sourceFlag) Type() string {
	return "path"
}
