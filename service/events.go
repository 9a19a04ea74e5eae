package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/studynotes/storefront.api/models"
)

// ProducerTopic is the topic to which the verification submitted message is sent
const ProducerTopic = "payment-verification-submitted"

// ProducerSchemaName is the schema used to send the verification submitted message
const ProducerSchemaName = "payment-verification-submitted"

// EventPublisher announces verifications that reached the site owner's inbox
type EventPublisher interface {
	PublishVerificationSubmitted(result models.SubmissionResult, intent models.PurchaseIntent) error
}

// verificationSubmitted represents the avro schema registered for ProducerSchemaName
type verificationSubmitted struct {
	Reference   string `avro:"reference"`
	ProductID   string `avro:"product_id"`
	ProductType string `avro:"product_type"`
	Amount      string `avro:"amount"`
	Attached    string `avro:"attached"`
}

// KafkaPublisher publishes events to kafka using the schema registry
type KafkaPublisher struct {
	BrokerAddrs       []string
	SchemaRegistryURL string
}

// PublishVerificationSubmitted handles creating a producer, marshalling the
// event into the registered avro schema and sending it to ProducerTopic
func (k *KafkaPublisher) PublishVerificationSubmitted(result models.SubmissionResult, intent models.PurchaseIntent) error {
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: k.BrokerAddrs})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}

	verificationSchema, err := schema.Get(k.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: verificationSchema,
	}

	message, err := prepareVerificationMessage(result, intent, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// prepareVerificationMessage is kept apart from the producer so it can be unit tested
func prepareVerificationMessage(result models.SubmissionResult, intent models.PurchaseIntent, verificationSchema avro.Schema) (*producer.Message, error) {
	event := verificationSubmitted{
		Reference:   result.Reference,
		ProductID:   intent.ProductID,
		ProductType: string(intent.ProductType),
		Amount:      intent.Amount.StringFixed(2),
		Attached:    fmt.Sprintf("%t", result.Attached),
	}

	messageBytes, err := verificationSchema.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("error marshalling verification submitted message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
