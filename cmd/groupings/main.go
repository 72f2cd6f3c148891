/*
 * Copyright 2023 nebuly.com.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"flag"
	"github.com/nebuly-ai/groupings/internal/driver"
	"github.com/nebuly-ai/groupings/pkg/api/groupings/v1alpha1"
	"github.com/nebuly-ai/groupings/pkg/constant"
	"github.com/nebuly-ai/groupings/pkg/util"
	"k8s.io/klog/v2"
	"os"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/yaml"
)

func main() {
	// Setup CLI args
	var configFile string
	var flags driver.Flags
	flag.StringVar(
		&configFile,
		driver.FlagConfig,
		"",
		"Path to the YAML file containing the GroupingsConfig. Flags override the values of the file.",
	)
	flag.StringVar(
		&flags.GroupSizes,
		driver.FlagSizes,
		util.GetEnv(constant.EnvGroupSizes, constant.DefaultGroupSizes),
		"Colon-separated list of group sizes.",
	)
	flag.IntVar(&flags.Limit, driver.FlagLimit, 0, "Max number of groupings to print, 0 prints all of them.")
	flag.StringVar(
		&flags.Output,
		driver.FlagOutput,
		string(constant.DefaultOutputFormat),
		"Output format: text, json or yaml.",
	)
	flag.BoolVar(&flags.CountOnly, driver.FlagCountOnly, false, "Print only the number of groupings.")
	opts := zap.Options{}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	// Setup context and logger
	ctx := ctrl.SetupSignalHandler()
	logger := log.FromContext(ctx)
	ctx = klog.NewContext(ctx, logger)

	// Load config
	var config v1alpha1.GroupingsConfig
	if configFile != "" {
		logger.Info("reading config file", "configFile", configFile)
		configBytes, err := os.ReadFile(configFile)
		if err != nil {
			logger.Error(err, "failed to read config file")
			os.Exit(1)
		}
		if err = yaml.Unmarshal(configBytes, &config); err != nil {
			logger.Error(err, "failed to unmarshal config file")
			os.Exit(1)
		}
	}

	// Flags explicitly set take precedence over the config file
	flags.Set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		flags.Set[f.Name] = true
	})
	if err := driver.ApplyFlags(&config, flags); err != nil {
		logger.Error(err, "invalid flags")
		os.Exit(1)
	}

	if err := driver.Run(ctx, config, os.Stdout); err != nil {
		logger.Error(err, "failed to enumerate groupings")
		os.Exit(1)
	}
}
