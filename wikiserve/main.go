// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Wikiserve serves a wiki directory over HTTP.
//
// Usage:
//
//	wikiserve [-config file] [-addr addr] [-root dir] [-theme light|dark|system] [-v n] [-log file]
//
// The wiki directory holds wiki-manifest.json, which lists the pages,
// and a wiki subdirectory holding the Markdown files the manifest names.
//
// Settings come from the JSON configuration file, if any, and are
// overridden by the flags given on the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/awiki/markdown/wiki"
	"github.com/awiki/markdown/wiki/server"
)

var (
	configFlag  = flag.String("config", "", "read settings from JSON `file`")
	addrFlag    = flag.String("addr", "", "listen on `addr`")
	rootFlag    = flag.String("root", "", "serve the wiki in `dir`")
	themeFlag   = flag.String("theme", "", "default page theme: light, dark or system")
	verboseFlag = flag.Int("v", 1, "log verbosity")
	logFlag     = flag.String("log", "", "write the log to `file` instead of standard error")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: wikiserve [flags]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("wikiserve: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	var logfile *string
	if *logFlag != "" {
		logfile = logFlag
	}
	commonlog.Configure(*verboseFlag, logfile)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	site, err := wiki.NewSite(cfg, os.DirFS(cfg.Root))
	if err != nil {
		log.Fatal(err)
	}
	s, err := server.New(site, cfg.Theme)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	commonlog.GetLogger("wikiserve").Noticef("serving %s on http://%s", cfg.Root, cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// loadConfig reads the configuration file and applies the flags.
func loadConfig() (wiki.Config, error) {
	cfg, err := wiki.ReadConfig(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *rootFlag != "" {
		cfg.Root = *rootFlag
	}
	if *themeFlag != "" {
		cfg.Theme = wiki.Theme(*themeFlag)
		switch cfg.Theme {
		case wiki.ThemeLight, wiki.ThemeDark, wiki.ThemeSystem:
		default:
			return cfg, fmt.Errorf("unknown theme %q", *themeFlag)
		}
	}
	return cfg, nil
}
