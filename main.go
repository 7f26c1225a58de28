package main

import (
	"os"

	"k8s.io/klog/v2"

	"q.log/lpdemo/cmd"
	_ "q.log/lpdemo/instance/mps"
)

func main() {
	defer klog.Flush()

	if err := cmd.NewRootCommand(os.Stdout).Execute(); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}
