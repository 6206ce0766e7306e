package kafka

import (
	"github.com/IBM/sarama"

	"bank-portal-service/src/pkg/log"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type KafkaConfig struct {
	Brokers       []string
	Username      string
	Password      string
	SaslMechanism string
	AppName       string
}

var kafkaConfig KafkaConfig

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	AppName       string
}

func InitKafkaConfig(cfg Cfg) KafkaConfig {
	kafkaConfig = KafkaConfig{
		Brokers:       []string{cfg.KafkaUrl},
		Username:      cfg.KafkaUsername,
		Password:      cfg.KafkaPassword,
		AppName:       cfg.AppName,
		SaslMechanism: sarama.SASLTypePlaintext,
	}
	return kafkaConfig
}

func GetConfig() KafkaConfig {
	return kafkaConfig
}

func (kc KafkaConfig) saramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = kc.AppName
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	if kc.Username != "" {
		cfg.Net.SASL.Enable = true
		cfg.Net.SASL.Mechanism = sarama.SASLMechanism(kc.SaslMechanism)
		cfg.Net.SASL.User = kc.Username
		cfg.Net.SASL.Password = kc.Password
	}
	return cfg
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(kc KafkaConfig, logger log.Log) (Producer, error) {
	p, err := sarama.NewSyncProducer(kc.Brokers, kc.saramaConfig())
	if err != nil {
		logger.Error("kafka-producer", err.Error(), "init", "")
		return nil, err
	}
	return &syncProducer{producer: p, log: logger}, nil
}

func (p *syncProducer) Publish(topic string, key, value []byte) error {
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.Error("kafka-producer", err.Error(), "publish", topic)
	}
	return err
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}
