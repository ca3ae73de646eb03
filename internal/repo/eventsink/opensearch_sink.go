// Package eventsink indexes processed provider events into OpenSearch so
// support can search the callback history of an order without touching the
// transactional store.
package eventsink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"

	"paytrailgw/internal/domain/payment"
)

var _ payment.EventSink = (*OpenSearchSink)(nil)

type OpenSearchSink struct {
	client *opensearch.Client
	index  string
}

func NewOpenSearchSink(ctx context.Context, urls []string, index string) (*OpenSearchSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &OpenSearchSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *OpenSearchSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"event_id":       map[string]any{"type": "keyword"},
				"order_id":       map[string]any{"type": "keyword"},
				"transaction_id": map[string]any{"type": "keyword"},
				"status":         map[string]any{"type": "keyword"},
				"channel":        map[string]any{"type": "keyword"},
				"amount":         map[string]any{"type": "long"},
				"currency":       map[string]any{"type": "keyword"},
				"created_at":     map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, _ := json.Marshal(body)

	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type providerEventDoc struct {
	EventID       string                 `json:"event_id"`
	OrderID       string                 `json:"order_id"`
	TransactionID string                 `json:"transaction_id,omitempty"`
	Status        payment.CallbackStatus `json:"status"`
	Channel       payment.Channel        `json:"channel"`
	Amount        int64                  `json:"amount"`
	Currency      string                 `json:"currency,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

func (s *OpenSearchSink) IndexProviderEvent(ctx context.Context, ev payment.ProviderEvent) error {
	doc := providerEventDoc{
		EventID:       uuid.NewString(),
		OrderID:       ev.OrderID,
		TransactionID: ev.TransactionID,
		Status:        ev.Status,
		Channel:       ev.Channel,
		Amount:        ev.Amount,
		Currency:      ev.Currency,
		CreatedAt:     time.Now().UTC(),
	}
	payload, _ := json.Marshal(doc)

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(doc.EventID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (s *OpenSearchSink) ProviderEventsForOrder(ctx context.Context, orderID string) ([]payment.ProviderEvent, error) {
	body := map[string]any{
		"size": 500,
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []map[string]any{
					{"term": map[string]any{"order_id": orderID}},
				},
			},
		},
		"sort": []map[string]any{
			{"created_at": map[string]any{"order": "asc"}},
		},
	}
	raw, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}

	events := make([]payment.ProviderEvent, 0, len(sr.Hits.Hits))
	for _, hit := range sr.Hits.Hits {
		var doc providerEventDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, fmt.Errorf("decode hit: %w", err)
		}
		events = append(events, payment.ProviderEvent{
			OrderID:       doc.OrderID,
			TransactionID: doc.TransactionID,
			Status:        doc.Status,
			Amount:        doc.Amount,
			Currency:      doc.Currency,
			Channel:       doc.Channel,
		})
	}
	return events, nil
}
