package kafka

import (
	"context"

	"github.com/iwtcode/clusterAdapter/internal/config"
	"github.com/iwtcode/clusterAdapter/internal/interfaces"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer создает новый экземпляр продюсера Kafka. Диагностика
// writer'а идет в отдельный logrus-логгер, чтобы не смешиваться с логом
// приложения.
func NewKafkaProducer(cfg *config.AppConfig) (interfaces.KafkaService, error) {
	writerLogger := logrus.New()
	writerLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	writer := &kafka.Writer{
		Addr:        kafka.TCP(cfg.KafkaBroker),
		Topic:       cfg.KafkaTopic,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: kafka.LoggerFunc(writerLogger.Errorf),
	}
	return &KafkaProducer{writer: writer}, nil
}

// Produce отправляет сообщение в Kafka
func (p *KafkaProducer) Produce(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
}

// Close закрывает соединение с Kafka
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
