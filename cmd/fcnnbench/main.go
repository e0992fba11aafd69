// Command fcnnbench times the matrix kernels and trains a small network on XOR.
//
// Usage:
//
//	fcnnbench matrix --rows 256 --cols 256 --runs 10
//	fcnnbench train --hidden 4 --eta 0.5 --epochs 5000 --seed 1
//	fcnnbench --profile cpu train
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"gopkg.in/urfave/cli.v1"
)

func main() {
	app := cli.NewApp()
	app.Name = "fcnnbench"
	app.Usage = "Time dense matrix kernels and train fully-connected networks"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "profile",
			Usage: "write a `cpu` or `mem` profile to the working directory",
		},
	}

	var stopper interface{ Stop() }
	app.Before = func(c *cli.Context) error {
		switch c.String("profile") {
		case "":
		case "cpu":
			stopper = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		case "mem":
			stopper = profile.Start(profile.MemProfile, profile.ProfilePath("."))
		default:
			return fmt.Errorf("unknown profile %q: want cpu or mem", c.String("profile"))
		}

		return nil
	}
	app.After = func(*cli.Context) error {
		if stopper != nil {
			stopper.Stop()
		}

		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:  "matrix",
			Usage: "Time construction, Randomize, Mul, MatVec and Hadamard",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "rows", Value: 128, Usage: "matrix rows `n`"},
				cli.IntFlag{Name: "cols", Value: 128, Usage: "matrix columns `n`"},
				cli.IntFlag{Name: "runs", Value: 10, Usage: "repetitions per operation `n`"},
			},
			Action: func(c *cli.Context) error {
				return runMatrix(os.Stdout, c.Int("rows"), c.Int("cols"), c.Int("runs"))
			},
		},
		{
			Name:  "train",
			Usage: "Train a 2-n-1 network (tanh hidden, sigmoid output) on XOR",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "hidden", Value: 4, Usage: "hidden layer width `n`"},
				cli.Float64Flag{Name: "eta", Value: 0.5, Usage: "learning rate `η`"},
				cli.IntFlag{Name: "epochs", Value: 5000, Usage: "training epochs `n`"},
				cli.Int64Flag{Name: "seed", Value: 1, Usage: "weight initialisation `seed`"},
				cli.IntFlag{Name: "report", Value: 1000, Usage: "print the mean error every `n` epochs (0 disables)"},
			},
			Action: func(c *cli.Context) error {
				return runTrain(os.Stdout, trainConfig{
					hidden: c.Int("hidden"),
					eta:    c.Float64("eta"),
					epochs: c.Int("epochs"),
					seed:   c.Int64("seed"),
					report: c.Int("report"),
				})
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fcnnbench:", err)
		os.Exit(1)
	}
}
