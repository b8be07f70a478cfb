// Command modhub-mock runs a local mock of the ModHub authentication API.
// It implements the auth endpoints with deterministic fake tokens and can
// publish an audit event per handled request to Kafka.
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/modhubco/modhub/internal/mockapi"
	"github.com/modhubco/modhub/pkg/publisher"
	"github.com/modhubco/modhub/pkg/publisher/kafka"
)

func main() {
	var (
		addr          string
		apiKey        string
		kafkaBrokers  []string
		kafkaTopic    string
		kafkaClientID string
	)

	cmd := &cobra.Command{
		Use:   "modhub-mock",
		Short: "Run a local mock of the ModHub auth API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var pub publisher.Publisher = publisher.NewNopPublisher()
			if len(kafkaBrokers) > 0 {
				pub, err = kafka.NewPublisher(kafka.Config{
					Brokers:  kafkaBrokers,
					Topic:    kafkaTopic,
					ClientID: kafkaClientID,
				})
				if err != nil {
					return err
				}
			}

			server := mockapi.New(mockapi.Config{
				APIKey:    apiKey,
				Logger:    logger,
				Publisher: pub,
			})

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Info("shutting down")
				if err := server.Shutdown(); err != nil {
					logger.Warn("shutdown", zap.Error(err))
				}
			}()

			logger.Info("mock api listening", zap.String("addr", ln.Addr().String()))
			return server.Listen(ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Accepted API key (empty accepts any non-empty key)")
	cmd.Flags().StringSliceVar(&kafkaBrokers, "kafka-brokers", nil, "Kafka brokers for audit events (disabled when empty)")
	cmd.Flags().StringVar(&kafkaTopic, "kafka-topic", "modhub.auth.v1", "Kafka topic for audit events")
	cmd.Flags().StringVar(&kafkaClientID, "kafka-client-id", "modhub-mock", "Kafka client id")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
