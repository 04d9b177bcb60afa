package utils

import (
	gonanoid "github.com/matoous/go-nanoid"
)

const (
	analysisIDPrefix   = "ANL-"
	analysisIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	analysisIDLength   = 12
)

// NewAnalysisID 生成分析编号，如 ANL-7K2M9Q0ZP4XA
func NewAnalysisID() (string, error) {
	code, err := gonanoid.Generate(analysisIDAlphabet, analysisIDLength)
	if err != nil {
		return "", err
	}
	return analysisIDPrefix + code, nil
}
