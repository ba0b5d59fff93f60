// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treekit/background"
	"github.com/bitmark-inc/treekit/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	// commands that do not need the configuration
	if processSetupCommand(program, command, os.Stdout) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]

	variables, err := parseVariables(arguments)
	if nil != err {
		exitwithstatus.Message("%s: invalid argument error: %s", program, err)
	}

	masterConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var output io.Writer = os.Stdout
	if len(options["quiet"]) > 0 {
		output = io.Discard
	} else if "" != masterConfiguration.Output {
		f, err := os.OpenFile(masterConfiguration.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if nil != err {
			exitwithstatus.Message("%s: output file: %q creation failed, error: %s", program, masterConfiguration.Output, err)
		}
		defer f.Close()
		output = f
	}

	workload, err := masterConfiguration.Benchmark.Workload()
	if nil != err {
		log.Criticalf("workload error: %s", err)
		exitwithstatus.Message("%s: invalid benchmark configuration: %s", program, err)
	}

	if "watch" != command {
		err = runWorkload(workload, output, logger.New(benchmarkLoggerPrefix), nil)
		if nil != err {
			fault.Criticalf("run error: %s", err)
			exitwithstatus.Message("%s: run failed: %s", program, err)
		}
		return
	}

	// watch mode
	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}

	b := &benchmarker{
		log:       logger.New(benchmarkLoggerPrefix),
		fileName:  configurationFile,
		variables: variables,
		output:    output,
		change:    channels.change,
	}

	processes := background.Processes{
		watcher,
		b,
	}
	register := background.Start(processes, nil)
	defer register.Stop()

	// wait for CTRL-C SIGINT or SIGTERM, or the configuration to vanish
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
	case <-channels.remove:
		log.Warnf("configuration file: %q removed", configurationFile)
	}
}
