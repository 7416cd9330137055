package notify

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/storage"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// UploadRecap streams data into bucket as objectName.
func UploadRecap(ctx context.Context, bucket, objectName string, data []byte) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	w := client.Bucket(bucket).Object(objectName).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write recap to bucket: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close bucket writer: %w", err)
	}
	slog.Debug("recap uploaded", "bucket", bucket, "object", objectName)
	return nil
}

// GetSecret fetches the latest version of a Secret Manager secret, given
// its full resource name ("projects/.../secrets/.../versions/latest").
func GetSecret(ctx context.Context, name string) (string, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create secret manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}
	return string(resp.Payload.GetData()), nil
}
