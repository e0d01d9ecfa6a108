// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/transact/fault"
)

type metadata struct {
	file    string
	config  *Configuration
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "transact-cli"
	app.Usage = "apply and inspect transactions for the xo and balance families"
	app.Version = version
	app.HideVersion = true
	app.Metadata = make(map[string]interface{})

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "transact.conf",
			Usage: " configuration `FILE` (.lua or .toml)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "address",
			Usage:     "compute the state address of a family key",
			ArgsUsage: "KEY [KEY]\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "family, f",
					Value: "",
					Usage: "*family `NAME` [xo|balance]",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "apply",
			Usage:     "create a transaction and apply it to the local state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "family, f",
					Value: "",
					Usage: "*family `NAME` [xo|balance]",
				},
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*base58 signer public `KEY`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*family payload `CSV`",
				},
			},
			Action: runApply,
		},
		{
			Name:      "decode",
			Usage:     "decode a packed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*packed transaction `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "show",
			Usage:     "display an applied transaction or the current state",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "+transaction id to display `TXID`",
				},
				cli.BoolFlag{
					Name:  "state, S",
					Usage: "+list state entries",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first state address to list `HEX`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runShow,
		},
		{
			Name:  "version",
			Usage: "display transact-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			file:    c.GlobalString("config-file"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		switch c.Args().Get(0) {
		case "", "help", "h", "version", "decode":
			return nil
		}

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", m.file)
		}

		configuration, err := getConfiguration(m.file)
		if nil != err {
			return err
		}
		m.config = configuration

		if err = logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		m.logging = true

		if err = fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", configuration)

		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok && m.logging {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
