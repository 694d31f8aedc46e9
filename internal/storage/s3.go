package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

// FileProgress is the per-file upload state reported to a ProgressFunc.
type FileProgress struct {
	Name     string
	Size     int64
	Uploaded int64
	Done     bool
}

// Progress is a snapshot across the whole submission upload. Percent covers
// all files combined.
type Progress struct {
	Percent int
	Files   []FileProgress
}

type ProgressFunc func(Progress)

// Upload is one pending object: the slot name keys the FileRef on the
// submission record.
type Upload struct {
	Slot        string
	FileName    string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Uploader stores submission files in object storage.
type Uploader interface {
	UploadAll(ctx context.Context, appID string, uploads []Upload, onProgress ProgressFunc) (map[string]*models.FileRef, error)
}

type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Uploader{client: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

// UploadAll puts every file under submissions/<appID>/ and reports combined
// progress after each read. Files go up sequentially so a failure leaves a
// clear partial state and the error names the file that failed.
func (u *S3Uploader) UploadAll(ctx context.Context, appID string, uploads []Upload, onProgress ProgressFunc) (map[string]*models.FileRef, error) {
	var total int64
	states := make([]FileProgress, len(uploads))
	for i, up := range uploads {
		total += up.Size
		states[i] = FileProgress{Name: up.FileName, Size: up.Size}
	}

	report := func() {
		if onProgress == nil {
			return
		}
		var done int64
		for _, s := range states {
			done += s.Uploaded
		}
		pct := 0
		if total > 0 {
			pct = int(done * 100 / total)
		}
		snapshot := make([]FileProgress, len(states))
		copy(snapshot, states)
		onProgress(Progress{Percent: pct, Files: snapshot})
	}

	refs := make(map[string]*models.FileRef, len(uploads))
	for i, up := range uploads {
		key := path.Join("submissions", appID, up.Slot+"_"+up.FileName)
		body := &countingReader{r: up.Body, onRead: func(n int64) {
			states[i].Uploaded += n
			report()
		}}
		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(u.bucket),
			Key:           aws.String(key),
			Body:          body,
			ContentLength: aws.Int64(up.Size),
			ContentType:   aws.String(up.ContentType),
		})
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", up.FileName, err)
		}
		states[i].Uploaded = up.Size
		states[i].Done = true
		report()
		refs[up.Slot] = &models.FileRef{
			FileName:    up.FileName,
			Size:        up.Size,
			ContentType: up.ContentType,
			StorageKey:  key,
			URL:         fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key),
		}
	}
	return refs, nil
}

type countingReader struct {
	r      io.Reader
	onRead func(int64)
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 && c.onRead != nil {
		c.onRead(int64(n))
	}
	return n, err
}
