// Package publish uploads rendered route artifacts to a Google Cloud
// Storage bucket, adapted from the project's earlier downloadAndUploadFile
// helper (which streamed a game replay GIF into a bucket; this streams a
// local render output instead).
package publish

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Upload streams r into bucketName/objectName and returns once the write
// is acknowledged. credentialsFile may be empty to use application-default
// credentials.
func Upload(ctx context.Context, bucketName, objectName string, r io.Reader, credentialsFile string) error {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("publish: create storage client: %w", err)
	}
	defer client.Close()

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("publish: copy to %s/%s: %w", bucketName, objectName, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("publish: close writer for %s/%s: %w", bucketName, objectName, err)
	}
	return nil
}
