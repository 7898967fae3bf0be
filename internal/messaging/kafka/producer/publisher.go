package producer

import (
	kafkago "github.com/segmentio/kafka-go"
)

// NewWriter membuat kafka writer bersama untuk semua topik.
// Topik ditentukan per pesan oleh pengirim.
func NewWriter(brokers []string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
