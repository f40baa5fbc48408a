package main

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// describeHost summarises the CPU and memory the render runs on
func describeHost() (string, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return "", fmt.Errorf("reading cpu info: %w", err)
	}
	if len(cpuInfo) == 0 {
		return "", fmt.Errorf("no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("reading memory info: %w", err)
	}

	return fmt.Sprintf("%s @ %.2f GHz, %d logical cores, %d GiB RAM (%.0f%% used)",
		cpuInfo[0].ModelName,
		cpuInfo[0].Mhz/1000,
		runtime.NumCPU(),
		memInfo.Total/(1024*1024*1024),
		memInfo.UsedPercent,
	), nil
}
