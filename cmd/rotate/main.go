package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hexegic/rotate/config"
	"github.com/hexegic/rotate/processing"
	"github.com/hexegic/rotate/rotation"
	"github.com/hexegic/rotate/verifying"
)

var (
	cfg = config.DefaultConfig()

	logLevel    string
	verify      bool
	printConfig bool
)

var rootCmd = &cobra.Command{
	Use:   "rotate <left|right> <in-file> <out-file>",
	Short: "Rotate the contents of a file by one bit",
	Long: `Rotate treats the input file as a single contiguous bit sequence, from the
most-significant bit of its first byte through the least-significant bit of
its last byte, and writes it to the output file rotated by exactly one bit in
the requested direction. The bit that falls off one end wraps around to the
other.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if printConfig {
			spew.Dump(cfg)
		}

		dir, err := rotation.ParseDirection(args[0])
		if err != nil {
			return err
		}

		logger, err := buildLogger()
		if err != nil {
			log.Fatalln("failed to initialize zap logger:", err)
		}

		proc, err := processing.NewProcessor(
			processing.WithConfig(cfg),
			processing.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err = proc.Process(ctx, dir, args[1], args[2])
		switch {
		case errors.Is(err, context.Canceled):
			return errors.New("rotation interrupted")
		case err != nil:
			return err
		}

		if verify {
			logger.Info("verifying rotated output as a sanity test")
			if err := verifying.Verify(dir, args[1], args[2]); err != nil {
				return err
			}
			logger.Info("rotated output verified")
		}

		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "logLevel", zapcore.InfoLevel.String(),
		"log level (debug, info, warn, error, dpanic, panic, fatal)")
	rootCmd.Flags().BoolVar(&verify, "verify", false,
		"verify the output by rotating it back, after completion")
	rootCmd.Flags().BoolVar(&printConfig, "printConfig", false, "print the used config")
	rootCmd.Flags().UintVar(&cfg.BufferSize, "bufferSize", cfg.BufferSize,
		"file buffer size, in bytes")
	rootCmd.Flags().Uint64Var(&cfg.ProgressLogRate, "progressRate", cfg.ProgressLogRate,
		"number of processed bytes between progress log lines")
}

func buildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
