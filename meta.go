package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

const VERSION = "0.2.0"

// Region 是一个矩形区域
type Region struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Extent 是一个宽高
type Extent struct {
	W int `json:"w"`
	H int `json:"h"`
}

// SpriteInfo 存储精灵图在图集中的位置以及裁切信息
type SpriteInfo struct {
	Filename   string  `json:"filename"`
	Region     Region  `json:"region"`
	SourceSize Extent  `json:"sourceSize"`
	SourceRect *Region `json:"sourceRect,omitempty"`
	Trimmed    bool    `json:"trimmed"`
}

// AtlasInfo 是单个图集的元数据
type AtlasInfo struct {
	AtlasName  string                `json:"atlasName"`
	SpriteList map[string]SpriteInfo `json:"spriteList"`
	TotalSize  Extent                `json:"totalSize"`
}

// MultiAtlasData 存储一次打包产生的所有图集
type MultiAtlasData struct {
	Meta struct {
		Version   string `json:"version"`
		Timestamp string `json:"timestamp"`
		BuildID   string `json:"buildId"`
	} `json:"meta"`
	Atlases []AtlasInfo `json:"atlases"`
}

func newMultiAtlasData(atlases []AtlasInfo) *MultiAtlasData {
	data := &MultiAtlasData{Atlases: atlases}
	data.Meta.Version = VERSION
	data.Meta.Timestamp = time.Now().Format("2006-01-02 15:04:05")
	data.Meta.BuildID = uuid.NewString()
	return data
}

func writeMetadata(path string, data *MultiAtlasData) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

func readMetadata(path string) (*MultiAtlasData, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取图集JSON文件失败: %w", err)
	}
	var data MultiAtlasData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("解析JSON失败: %w", err)
	}
	return &data, nil
}
