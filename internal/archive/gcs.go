package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSStore(ctx context.Context, bucket, prefix string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) SaveRound(ctx context.Context, round Round) (string, error) {
	data, err := json.MarshalIndent(round, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode round: %w", err)
	}

	name := path.Join(s.prefix, roundName(round.CreatedAt))
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload round: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to upload round: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, name), nil
}

func (s *GCSStore) Recent(ctx context.Context, n int) ([]string, error) {
	bkt := s.client.Bucket(s.bucket)
	it := bkt.Objects(ctx, &storage.Query{Prefix: s.prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		if path.Ext(attrs.Name) != ".json" {
			continue
		}
		names = append(names, attrs.Name)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if n > 0 && len(names) > n {
		names = names[:n]
	}
	return names, nil
}
