package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rxtech-lab/argo-kline/internal/engine"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func computeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the payload to `FILE` instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Indent the JSON output",
		},
	}
}

// computeAction runs one chart pass and writes the OptionList payload.
func computeAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	bars, cfg, err := loadInputs(cmd, log)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(log)
	if err != nil {
		return err
	}

	optionList, err := eng.Process(bars, cfg)
	if err != nil {
		return err
	}

	var out []byte
	if cmd.Bool("pretty") {
		out, err = json.MarshalIndent(optionList, "", "  ")
	} else {
		out, err = json.Marshal(optionList)
	}

	if err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, "failed to encode payload", err)
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return errors.Wrapf(errors.ErrCodeEncodeFailed, err, "failed to write %s", path)
		}

		log.Info("Payload written", zap.String("path", path), zap.Int("bars", len(bars)))

		return nil
	}

	_, err = cmd.Root().Writer.Write(append(out, '\n'))

	return err
}
