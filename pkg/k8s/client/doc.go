// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client resolves kubeconfig files the way kubectl does.
//
// The Kubernetes section talks to the cluster through kubectl, so this
// package only reads local configuration: which kubeconfig applies and which
// context it selects. The context name is shown next to the pod summary.
//
//	name, err := client.CurrentContext(cfg.Kubeconfig)
//	if err != nil {
//	    // no kubeconfig, report without a context
//	}
package client
