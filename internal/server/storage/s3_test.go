package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freshify/internal/common"
)

func TestNewS3Store_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no creds")
	}

	_, err := NewS3Store(context.Background(), Options{})
	assert.ErrorContains(t, err, "aws config: no creds")
}

func TestNewS3Store_AppliesEndpoint(t *testing.T) {
	origNew := newS3ClientFromConfig
	t.Cleanup(func() { newS3ClientFromConfig = origNew })

	var got s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&got)
		}
		return s3.NewFromConfig(cfg, optFns...)
	}

	st, err := NewS3Store(context.Background(), Options{User: "u", Password: "p", Bucket: "food-images", Region: "us-east-1", Endpoint: "http://minio:9000"})
	require.NoError(t, err)
	assert.Equal(t, "food-images", st.bucket)
	require.NotNil(t, got.BaseEndpoint)
	assert.Equal(t, "http://minio:9000", *got.BaseEndpoint)
	assert.True(t, got.UsePathStyle)
}

func TestPutImage(t *testing.T) {
	orig := putObject
	t.Cleanup(func() { putObject = orig })

	var in *s3.PutObjectInput
	putObject = func(c *s3.Client, ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		in = input
		return &s3.PutObjectOutput{}, nil
	}

	st := &S3Store{bucket: "food-images"}
	require.NoError(t, st.PutImage(context.Background(), "scans/a.png", &Image{ContentType: "image/png", Data: []byte("png")}))
	assert.Equal(t, "food-images", aws.ToString(in.Bucket))
	assert.Equal(t, "scans/a.png", aws.ToString(in.Key))
	assert.Equal(t, "image/png", aws.ToString(in.ContentType))
	body, _ := io.ReadAll(in.Body)
	assert.Equal(t, []byte("png"), body)

	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("denied")
	}
	err := st.PutImage(context.Background(), "k", &Image{})
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestPresignGet(t *testing.T) {
	orig := presignGetObject
	t.Cleanup(func() { presignGetObject = orig })

	var gotTTL time.Duration
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		gotTTL = po.Expires
		return &v4.PresignedHTTPRequest{URL: "https://s3/" + aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)}, nil
	}

	st := &S3Store{bucket: "food-images"}
	url, err := st.PresignGet(context.Background(), "apple.png", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://s3/food-images/apple.png", url)
	assert.Equal(t, time.Minute, gotTTL)

	presignGetObject = func(*s3.PresignClient, context.Context, *s3.GetObjectInput, ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sig")
	}
	_, err = st.PresignGet(context.Background(), "x", time.Minute)
	assert.ErrorContains(t, err, "presign get: sig")
}
