package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() S3Config {
	return S3Config{
		AccessKey:    "admin",
		SecretKey:    "secret",
		Bucket:       "pics",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000/",
		URLValidity:  15 * time.Minute,
	}
}

func TestNewKey(t *testing.T) {
	k := NewKey(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC), ".PNG")
	assert.Regexp(t, regexp.MustCompile(`^employees/2025/3/9/[0-9a-f-]{36}\.png$`), k)
	assert.NotEqual(t, k, NewKey(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC), ".png"))
}

func TestNewS3Store_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	defer func() { loadDefaultAWSConfig = orig }()

	_, err := NewS3Store(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config")
}

func TestNewS3Store_EndpointOptions(t *testing.T) {
	var opts s3.Options
	orig := newS3ClientFromConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return orig(cfg, optFns...)
	}
	defer func() { newS3ClientFromConfig = orig }()

	s, err := NewS3Store(context.Background(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, s.client)
	require.NotNil(t, s.presign)
	assert.Equal(t, "http://127.0.0.1:9000/", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestS3Store_Put(t *testing.T) {
	s, err := NewS3Store(context.Background(), testConfig())
	require.NoError(t, err)

	var got *s3.PutObjectInput
	orig := putObject
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		got = in
		return nil
	}
	defer func() { putObject = orig }()

	require.NoError(t, s.Put(context.Background(), "employees/k.png", "image/png", bytes.NewReader([]byte("img")), 3))
	require.NotNil(t, got)
	assert.Equal(t, "pics", aws.ToString(got.Bucket))
	assert.Equal(t, "employees/k.png", aws.ToString(got.Key))
	assert.Equal(t, "image/png", aws.ToString(got.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(got.ContentLength))
	b, _ := io.ReadAll(got.Body)
	assert.Equal(t, "img", string(b))
}

func TestS3Store_PutError(t *testing.T) {
	s, err := NewS3Store(context.Background(), testConfig())
	require.NoError(t, err)

	orig := putObject
	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput) error { return errors.New("denied") }
	defer func() { putObject = orig }()

	err = s.Put(context.Background(), "k", "", strings.NewReader(""), -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "put object k: denied")
}

func TestS3Store_Delete(t *testing.T) {
	s, err := NewS3Store(context.Background(), testConfig())
	require.NoError(t, err)

	var keys []string
	orig := deleteObject
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) error {
		keys = append(keys, aws.ToString(in.Key))
		if aws.ToString(in.Key) == "bad" {
			return errors.New("gone")
		}
		return nil
	}
	defer func() { deleteObject = orig }()

	assert.NoError(t, s.Delete(context.Background(), "employees/k.png"))
	assert.Error(t, s.Delete(context.Background(), "bad"))
	assert.Equal(t, []string{"employees/k.png", "bad"}, keys)
}

func TestS3Store_URL(t *testing.T) {
	s, err := NewS3Store(context.Background(), testConfig())
	require.NoError(t, err)

	var expires time.Duration
	orig := presignGetObject
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		expires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://minio/pics/" + aws.ToString(in.Key)}, nil
	}
	defer func() { presignGetObject = orig }()

	u, err := s.URL(context.Background(), "employees/k.png")
	require.NoError(t, err)
	assert.Equal(t, "http://minio/pics/employees/k.png", u)
	assert.Equal(t, 15*time.Minute, expires)
}

func TestS3Store_URLRealPresign(t *testing.T) {
	s, err := NewS3Store(context.Background(), testConfig())
	require.NoError(t, err)

	u, err := s.URL(context.Background(), "employees/k.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "http://127.0.0.1:9000/"), u)
	assert.Contains(t, u, "/pics/employees/k.png?")
	assert.Contains(t, u, "X-Amz-Expires=900")
}
