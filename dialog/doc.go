// Copyright 2025 Ryna Labs
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


// Package dialog orchestrates conversation turns for the assistant.
//
// The Engine type routes each utterance by intent: conversational text gets a
// canned reply, search text runs through an ambiguity check and then the
// ranking engine, and an active guided session intercepts everything until its
// question list is exhausted. Each turn produces an ordered list of messages
// the caller renders; the engine itself holds no per-conversation state, that
// lives in the caller-owned GuidedSession.
package dialog
