/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inspect.go
Description: Inspect command for conceptctl. Opens a model file and prints
its layers, materials and loadings for a quick structural overview.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/concept-client/pkg/concept"
	"github.com/spf13/cobra"
)

// RunInspect opens a model file and prints a summary of its contents
func RunInspect(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	file := args[0]

	client, err := startConcept()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer shutDown(client)

	model, err := client.OpenFile(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer model.CloseModel()

	fmt.Printf("📐 Model: %s\n", file)
	fmt.Println()

	if err := printLoadings(model); err != nil {
		return err
	}
	if err := printLayers(model); err != nil {
		return err
	}
	return printMaterials(model)
}

// printLoadings lists the loading layers and their loading types
func printLoadings(model *concept.Model) error {
	manager, err := model.CadManager()
	if err != nil {
		return fmt.Errorf("failed to get cad manager: %w", err)
	}

	layers, err := manager.AllLoadingLayers()
	if err != nil {
		return fmt.Errorf("failed to list loading layers: %w", err)
	}

	fmt.Printf("Loadings (%d):\n", len(layers))
	for _, layer := range layers {
		name, err := layer.Name()
		if err != nil {
			return err
		}
		loadingType, err := layer.LoadingType()
		if err != nil {
			return err
		}
		analysis, err := layer.AnalysisType()
		if err != nil {
			return err
		}
		fmt.Printf("  %-32s type=%s analysis=%s\n", name, loadingType.String(), analysis)
	}
	fmt.Println()
	return nil
}

// printLayers lists the combo and tendon layers
func printLayers(model *concept.Model) error {
	manager, err := model.CadManager()
	if err != nil {
		return fmt.Errorf("failed to get cad manager: %w", err)
	}

	combos, err := manager.LoadComboLayers()
	if err != nil {
		return fmt.Errorf("failed to list load combo layers: %w", err)
	}
	fmt.Printf("Load Combos (%d):\n", len(combos))
	for _, combo := range combos {
		name, err := combo.Name()
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()

	tendonLayers, err := manager.TendonLayers()
	if err != nil {
		return fmt.Errorf("failed to list tendon layers: %w", err)
	}
	fmt.Printf("Tendon Layers (%d):\n", len(tendonLayers))
	for _, layer := range tendonLayers {
		name, err := layer.Name()
		if err != nil {
			return err
		}
		spanSet, err := layer.SpanSet()
		if err != nil {
			return err
		}
		generatedBy, err := layer.GeneratedBy()
		if err != nil {
			return err
		}
		fmt.Printf("  %-32s spans=%s generated_by=%s\n", name, spanSet, generatedBy)
	}
	fmt.Println()
	return nil
}

// printMaterials lists the material catalogs
func printMaterials(model *concept.Model) error {
	concretes, err := model.Concretes()
	if err != nil {
		return fmt.Errorf("failed to get concretes: %w", err)
	}
	mixes, err := concretes.Concretes()
	if err != nil {
		return fmt.Errorf("failed to list concretes: %w", err)
	}
	fmt.Printf("Concrete Mixes (%d):\n", len(mixes))
	for _, mix := range mixes {
		name, err := mix.Name()
		if err != nil {
			return err
		}
		fcFinal, err := mix.FcFinal()
		if err != nil {
			return err
		}
		fmt.Printf("  %-32s fc_final=%g\n", name, fcFinal)
	}
	fmt.Println()

	ptCatalog, err := model.PTSystems()
	if err != nil {
		return fmt.Errorf("failed to get pt systems: %w", err)
	}
	systems, err := ptCatalog.PTSystems()
	if err != nil {
		return fmt.Errorf("failed to list pt systems: %w", err)
	}
	fmt.Printf("PT Systems (%d):\n", len(systems))
	for _, system := range systems {
		name, err := system.Name()
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", name)
	}

	return nil
}
