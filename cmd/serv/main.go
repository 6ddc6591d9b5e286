package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/tilemart/tilemart/internal"
)

var (
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "tilemart",
	Short: "Tilemart - 타일마트 홈페이지/상담 관리 백엔드",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return internal.Run(configFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "설정 파일 경로")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
