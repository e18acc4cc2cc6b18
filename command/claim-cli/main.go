// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimd/command/claim-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	connectionOffset int
	save             bool
	testnet          bool
	verbose          bool
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "claim-cli"
	app.Usage = "claimd client"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	instanceFlag := cli.StringFlag{
		Name:  "instance, r",
		Value: "",
		Usage: " registry `NAME` [default: first registry of the node]",
	}
	proofFlags := []cli.Flag{
		instanceFlag,
		cli.StringFlag{
			Name:  "proof, P",
			Value: "",
			Usage: "+proof as `HEX`",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "+use SHA3-256 of `FILE` as the proof",
		},
	}
	secretFlags := append(proofFlags,
		cli.StringFlag{
			Name:  "secret, s",
			Value: "",
			Usage: " lock secret `STRING`",
		},
	)

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [default: $XDG_CONFIG_HOME/claim-cli/claim-cli.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a private key, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise claim-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "network, n",
					Value: "testing",
					Usage: " claimd `CHAIN` [claims|testing|local]",
				},
				cli.StringFlag{
					Name:  "connect, C",
					Value: "",
					Usage: "*claimd host/IP and port, `HOST:PORT[,HOST:PORT...]`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing private `KEY` in hex",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing private `KEY` in hex",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only identity from `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "identities",
			Usage:  "display claim-cli configuration",
			Action: runIdentities,
		},
		{
			Name:   "password",
			Usage:  "change identity password",
			Action: runChangePassword,
		},
		{
			Name:   "info",
			Usage:  "display claimd status",
			Action: runInfo,
		},
		{
			Name:      "create",
			Usage:     "claim an unclaimed proof",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     proofFlags,
			Action:    runCreate,
		},
		{
			Name:      "lock",
			Usage:     "attach a secret to an owned proof",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     secretFlags,
			Action:    runLock,
		},
		{
			Name:      "update",
			Usage:     "take over a locked proof with its secret",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     secretFlags,
			Action:    runUpdate,
		},
		{
			Name:      "revoke",
			Usage:     "release an owned proof",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     proofFlags,
			Action:    runRevoke,
		},
		{
			Name:      "address",
			Usage:     "claim a pay-to-script-hash address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				instanceFlag,
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*address as `HEX`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "get",
			Usage:     "display the owner of a proof",
			ArgsUsage: "\n   (+ = select one)",
			Flags:     proofFlags,
			Action:    runGet,
		},
		{
			Name:      "get-address",
			Usage:     "display the owner of an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				instanceFlag,
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*address as `HEX`",
				},
			},
			Action: runGetAddress,
		},
		{
			Name:  "list",
			Usage: "list claims in proof order",
			Flags: []cli.Flag{
				instanceFlag,
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first proof `HEX` to list",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:  "version",
			Usage: "display claim-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "generate":
			c.App.Metadata["config"] = &metadata{
				testnet: true,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file, err := configurationFile(c.GlobalString("config"), app.Name)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		offset := 0
		if len(config.Connections) > 1 {
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			offset = r.Intn(len(config.Connections))
		}

		c.App.Metadata["config"] = &metadata{
			file:             file,
			config:           config,
			connectionOffset: offset,
			testnet:          config.TestNet,
			verbose:          verbose,
			e:                e,
			w:                w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}

// configurationFile - explicit file or the XDG default
func configurationFile(file string, name string) (string, error) {
	if "" != file {
		return filepath.Abs(filepath.Clean(os.ExpandEnv(file)))
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return filepath.Join(p, name, name+".json"), nil
}
