package config

import "github.com/spf13/viper"

const maxBodyBytesKey = "max_body_bytes"

type RequestConfig interface {
	GetMaxBodyBytes() int64
}

type Request struct {
	v *viper.Viper
}

var _ RequestConfig = Request{}

func (r Request) GetMaxBodyBytes() int64 {
	n := r.v.GetInt64(maxBodyBytesKey)
	if n <= 0 {
		return 1 << 20
	}
	return n
}
