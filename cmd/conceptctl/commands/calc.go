/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: calc.go
Description: Calc command for conceptctl. Starts the host process, opens a
model file, generates the mesh, runs calc-all, saves the file and shuts the
host down. Writes a timestamped session report when finished.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/kleascm/concept-client/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CalcReport summarizes a calc session for the session report
type CalcReport struct {
	File         string        `json:"file"`
	SavedTo      string        `json:"saved_to"`
	MeshDuration time.Duration `json:"mesh_duration"`
	CalcDuration time.Duration `json:"calc_duration"`
	Duration     time.Duration `json:"duration"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
}

// RunCalc opens a model file, meshes and calcs it, and saves the result
func RunCalc(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	file := args[0]
	savePath := viper.GetString("save_as")
	if savePath == "" {
		savePath = file
	}

	fmt.Printf("🚀 Calc session for: %s\n", file)

	report := &CalcReport{File: file, SavedTo: savePath}
	start := time.Now()
	err := runCalcSession(file, savePath, report)
	report.Duration = time.Since(start)
	report.Success = err == nil
	if err != nil {
		report.Error = err.Error()
	}

	if path, writeErr := utils.WriteSessionReport("calc", protocol.Version, report); writeErr != nil {
		logrus.WithError(writeErr).Warn("Failed to write session report")
	} else {
		fmt.Printf("📊 Session report: %s\n", path)
	}

	if err != nil {
		return err
	}

	appLogger.LogCalc(file, report.CalcDuration, map[string]interface{}{
		"saved_to":      savePath,
		"mesh_duration": report.MeshDuration,
	})
	fmt.Printf("✅ Calc completed in %s, saved to %s\n", report.Duration.Round(time.Millisecond), savePath)
	return nil
}

func runCalcSession(file string, savePath string, report *CalcReport) error {
	client, err := startConcept()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer shutDown(client)

	model, err := client.OpenFile(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	meshStart := time.Now()
	if err := model.GenerateMesh(); err != nil {
		return fmt.Errorf("mesh generation failed: %w", err)
	}
	report.MeshDuration = time.Since(meshStart)

	calcStart := time.Now()
	if err := model.CalcAll(commandTimeout()); err != nil {
		return fmt.Errorf("calc-all failed: %w", err)
	}
	report.CalcDuration = time.Since(calcStart)

	if err := model.SaveFile(savePath); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return model.CloseModel()
}
